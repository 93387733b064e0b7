// cmd/fixtures/main.go dumps the embedded fixture tables to a directory so
// they can be edited and served via FIXTURE_DIR.
package main

import (
	"flag"
	"log"

	"github.com/garageline/garage-mock-backend/internal/fixture"
)

func main() {
	dir := flag.String("dir", "fixtures", "output directory for fixture JSON files")
	flag.Parse()

	if err := fixture.WriteDefaults(*dir); err != nil {
		log.Fatalf("failed to write fixtures: %v", err)
	}
	log.Printf("✅ Wrote crm.json, tires.json, services.json to %s\n", *dir)
}
