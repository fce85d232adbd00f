package main

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
)

// connectInfo is what players need to reach the SSH server.
type connectInfo struct {
	Host string
	Port string
}

// Command returns the ssh invocation shown on the page.
func (c connectInfo) Command() string {
	if c.Port == "" || c.Port == "22" {
		return fmt.Sprintf("ssh -t %s", c.Host)
	}
	return fmt.Sprintf("ssh -t -p %s %s", c.Port, c.Host)
}

var pageTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Gradius Clone</title>
<style>
body { background: #000; color: #fff; font-family: monospace; text-align: center; padding-top: 10vh; }
code { color: #ffec27; font-size: 1.4em; }
td { padding: 0 1em; text-align: left; }
table { margin: 2em auto; }
</style>
</head>
<body>
<h1>GRADIUS CLONE</h1>
<p>Play in your terminal:</p>
<p><code>{{.Command}}</code></p>
<table>
<tr><td>move</td><td>arrows / wasd</td></tr>
<tr><td>fire</td><td>space</td></tr>
<tr><td>start</td><td>enter</td></tr>
<tr><td>quit</td><td>q</td></tr>
</table>
</body>
</html>
`))

func newHandler(info connectInfo, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, info); err != nil {
			logger.Error("render page", "err", err)
		}
	})
	return mux
}
