package particlelife

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// Step advances the world by one tick.
//
// The compute phase reads only the current buffer and writes each particle's
// next state into the spare buffer, split across worker goroutines. Once every
// worker has finished the buffers are swapped, so no particle's movement can
// leak into another particle's force evaluation within the same tick.
func (w *World) Step() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.reconcile()

	n := len(w.cur)
	chunks := min(w.workers, n)
	if chunks <= 1 {
		w.advanceRange(0, n)
	} else {
		size := (n + chunks - 1) / chunks
		var g errgroup.Group
		for start := 0; start < n; start += size {
			end := min(start+size, n)
			g.Go(func() error {
				w.advanceRange(start, end)
				return nil
			})
		}
		// Workers never fail; Wait is the barrier before the swap.
		g.Wait()
	}

	w.cur, w.nxt = w.nxt, w.cur
	w.tick++
}

// advanceRange computes the next state of particles [start, end).
func (w *World) advanceRange(start, end int) {
	params := w.cfg.Params
	for i := start; i < end; i++ {
		self := w.cur[i]
		var net r2.Vec
		for j, other := range w.cur {
			if j == i {
				continue
			}
			net = r2.Add(net, Force(self, other, params, w.relations))
		}
		self.Vel = r2.Scale(params.Friction, r2.Add(self.Vel, net))
		self.Pos = r2.Add(self.Pos, self.Vel)
		w.nxt[i] = self
	}
}
