// Package regency provides a Regency-era storyteller that composes
// Jane Austen styled narratives with a cast of characters, a timeline
// of significant events and a closing quotation.
//
// Quick start:
//
//	st, err := regency.New(regency.WithSeed(1813))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	story, _ := st.Tell(ctx, "Love and Courtship", "Bath", "summer")
//	fmt.Println(story.Title)
//	fmt.Println(story.Text)
//
// A Storyteller created with WithSeed reproduces the same story for
// the same inputs; without it each run draws a fresh seed from the
// operating system. A Storyteller is not safe for concurrent use:
// every call advances the single pseudo-random stream.
package regency
