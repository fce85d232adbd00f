package object

import "testing"

func TestPoolSpawnRespectsCapacity(t *testing.T) {
	p := NewPool[*Bullet](BulletMaxCount)

	accepted := 0
	for i := 0; i < BulletMaxCount+5; i++ {
		if p.Spawn(NewBullet(float64(i), 0)) {
			accepted++
		}
	}

	if accepted != BulletMaxCount {
		t.Errorf("accepted %d spawns, want %d", accepted, BulletMaxCount)
	}
	if p.Len() != BulletMaxCount {
		t.Errorf("Len() = %d, want %d", p.Len(), BulletMaxCount)
	}
	if !p.Full() {
		t.Error("expected pool to be full")
	}
}

func TestPoolUnbounded(t *testing.T) {
	p := NewPool[*Explosion](0)
	for i := 0; i < 100; i++ {
		if !p.Spawn(NewExplosion(0, 0)) {
			t.Fatalf("unbounded pool rejected spawn %d", i)
		}
	}
	if p.Full() {
		t.Error("unbounded pool reported full")
	}
	if p.Cap() != 0 {
		t.Errorf("Cap() = %d, want 0", p.Cap())
	}
}

func TestPoolCompactPreservesOrder(t *testing.T) {
	p := NewPool[*Bullet](BulletMaxCount)
	bullets := make([]*Bullet, 5)
	for i := range bullets {
		bullets[i] = NewBullet(float64(i), 0)
		p.Spawn(bullets[i])
	}

	bullets[1].MarkDestroyed()
	bullets[3].MarkDestroyed()
	p.Compact()

	items := p.Items()
	want := []*Bullet{bullets[0], bullets[2], bullets[4]}
	if len(items) != len(want) {
		t.Fatalf("Len after compact = %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = bullet at x=%v, want x=%v", i, items[i].X, want[i].X)
		}
	}
}

func TestPoolCompactFreesCapacity(t *testing.T) {
	p := NewPool[*Bullet](2)
	a, b := NewBullet(0, 0), NewBullet(1, 0)
	p.Spawn(a)
	p.Spawn(b)
	if p.Spawn(NewBullet(2, 0)) {
		t.Fatal("spawn into full pool should be dropped")
	}

	a.MarkDestroyed()
	p.Compact()

	if !p.Spawn(NewBullet(3, 0)) {
		t.Error("spawn after compaction should succeed")
	}
}

func TestPoolAdvanceUpdatesAndCulls(t *testing.T) {
	p := NewPool[*Bullet](BulletMaxCount)
	p.Spawn(NewBullet(10, 0))
	p.Spawn(NewBullet(ArenaWidth, 0)) // leaves the arena on the next tick

	p.Advance(newTestContext(newScriptedRand()))

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	if got := p.Items()[0].X; got != 10+BulletSpeed {
		t.Errorf("survivor x = %v, want %v", got, 10+BulletSpeed)
	}
}

func TestPoolClear(t *testing.T) {
	p := NewPool[*Enemy](EnemyMaxCount)
	rng := newScriptedRand()
	for i := 0; i < 3; i++ {
		p.Spawn(NewEnemy(VariantStraight, 0, rng))
	}
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", p.Len())
	}
}

func TestPoolDrawSkipsDestroyed(t *testing.T) {
	p := NewPool[*Bullet](BulletMaxCount)
	a, b := NewBullet(0, 0), NewBullet(10, 0)
	p.Spawn(a)
	p.Spawn(b)
	a.MarkDestroyed()

	sink := &recordingSink{}
	p.Draw(sink)
	if sink.rects != 1 {
		t.Errorf("drew %d rects, want 1", sink.rects)
	}
}
