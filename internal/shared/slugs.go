package shared

// AnimalSlugs is the default ingest set: the upstream slugs the catalog
// is refreshed from when INGEST_SLUGS_FILE is not provided.
var AnimalSlugs = []string{
	"sea-otter",
	"beluga-whale",
	"penguin",
	"seahorse",
	"sea-turtle",
	"octopus",
	"jellyfish",
	"shark",
	"whale-shark",
	"manta-ray",
	"green-sea-turtle",
	"bottlenose-dolphin",
	"piranha",
	"sea-lion",
	"garden-eel",
	"lionfish",
	"sand-tiger-shark",
	"american-alligator",
	"african-penguin",
	"harbor-seal",
}
