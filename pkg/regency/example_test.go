package regency_test

import (
	"context"
	"fmt"
	"log"

	"github.com/not-lavanya/janeaustenstoryteller/pkg/regency"
)

func Example() {
	st, err := regency.New(regency.WithSeed(1813))
	if err != nil {
		log.Fatal(err)
	}

	story, err := st.Tell(context.Background(), "Love and Courtship", "Bath", "summer")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(story.Title)
	fmt.Println(story.Settings.Season)
	// Output:
	// A Summer Tale at Bath
	// summer
}
