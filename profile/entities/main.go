// Profiling:
//
//	go build ./profile/entities
//	go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof
package main

import (
	"github.com/pkg/profile"

	"github.com/colstore/colstore"
	"github.com/colstore/colstore/types"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		w := colstore.NewWorld(colstore.WithInitialCapacity(numEntities))
		for i := 0; i < iters; i++ {
			ents := make([]types.Entity, 0, numEntities)
			for i := 0; i < numEntities; i++ {
				e := w.Create()
				colstore.SetComponent(w, e, position{X: 1, Y: 2})
				colstore.SetComponent(w, e, velocity{DX: 3, DY: 4})
				ents = append(ents, e)
			}
			for _, e := range ents {
				_ = w.Destroy(e)
			}
		}
	}
}
