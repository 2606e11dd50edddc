package main

import (
	"log"

	"github.com/fredbi/uri3986"
	"github.com/fredbi/uri3986/profiling/fixtures"
	"github.com/pkg/profile"
)

const profDir = "prof"

func main() {
	const n = 100000

	profileCPU(n)
	profileMemory(n)
}

func profileCPU(n int) {
	defer profile.Start(
		profile.CPUProfile,
		profile.ProfilePath(profDir),
		profile.NoShutdownHook,
	).Stop()

	runProfile(n)
}

func profileMemory(n int) {
	defer profile.Start(
		profile.MemProfile,
		profile.ProfilePath(profDir),
		profile.NoShutdownHook,
	).Stop()

	runProfile(n)
}

func runProfile(n int) {
	u := uri.New()
	for i := 0; i < n; i++ {
		for _, generator := range fixtures.AllGenerators {
			for _, testCase := range generator() {
				if testCase.IsReference || testCase.Err != nil {
					continue
				}

				if !u.Parse(testCase.URIRaw) {
					log.Fatalf("unexpected error for %q: %v", testCase.URIRaw, u.Err())
				}
			}
		}
	}
}
