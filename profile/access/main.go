// Profiling:
//
//	go build ./profile/access
//	go tool pprof -http=":8000" -nodefraction=0.001 ./access cpu.pprof
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
	iters := 100000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	w := colstore.NewWorld(colstore.WithInitialCapacity(numEntities))
	ents := make([]types.Entity, 0, numEntities)
	for i := 0; i < numEntities; i++ {
		e := w.Create()
		colstore.SetComponent(w, e, position{})
		colstore.SetComponent(w, e, velocity{DX: 1, DY: 1})
		ents = append(ents, e)
	}
	for i := 0; i < iters; i++ {
		for _, e := range ents {
			vel, ok := colstore.GetComponent[velocity](w, e)
			if !ok {
				continue
			}
			dx, dy := vel.Value().DX, vel.Value().DY
			vel.Release()
			pos, ok := colstore.GetComponentMut[position](w, e)
			if !ok {
				continue
			}
			p := pos.Value()
			p.X += dx
			p.Y += dy
			pos.Set(p)
			pos.Release()
		}
	}
}
