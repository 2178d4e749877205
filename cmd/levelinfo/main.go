// Command levelinfo validates a level file and lists the randomizer
// locations it places.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/starseeker/levels"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/world"
)

func main() {
	levelName := flag.String("level", levels.NormalArea, "embedded level name, or a path with -file")
	fromFile := flag.Bool("file", false, "read -level from disk instead of the embedded levels")
	final := flag.Bool("final", false, "load as the final area")
	flag.Parse()

	lvl, err := loadLevel(*levelName, *fromFile)
	if err != nil {
		log.Fatal(err)
	}

	w := world.NewFromLevel(lvl, progress.NewManager(), *final, world.Options{
		PlayerSpec: prefabs.DefaultPlayerSpec(),
		EnemySpec:  prefabs.DefaultEnemySpec(),
	})

	fmt.Printf("%s: %dx%d tiles, %dx%d rooms, loop=%v\n",
		*levelName, lvl.Width, lvl.Height, w.Stage.RoomsX(), w.Stage.RoomsY(), lvl.Loop)
	fmt.Printf("stars %d, enemies %d, chests %d, doors %d\n",
		w.Objects.StarCount(), w.Objects.EnemyCount(), len(w.Objects.Chests), len(w.Objects.Doors))

	fmt.Printf("locations %v\n", w.Objects.Locations())

	// Progress is shared between areas, so the level is checked against the
	// other embedded areas as well.
	all := []*levels.Level{lvl}
	for _, name := range []string{levels.NormalArea, levels.FinalArea} {
		if filepath.Base(*levelName) == name {
			continue
		}
		other, err := levels.LoadLevelFromFS(name)
		if err != nil {
			log.Fatal(err)
		}
		all = append(all, other)
	}
	if err := world.CheckLocations(all...); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadLevel(name string, fromFile bool) (*levels.Level, error) {
	if !fromFile {
		return levels.LoadLevelFromFS(name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return levels.ParseLevel(data)
}
