package main

import (
	"fmt"
	"os"

	"github.com/a-peyrard/adptarray"
	"github.com/a-peyrard/adptarray/behavior"
)

// Walkthrough of the adaptive array API. Configure it with ADPTARRAY_GROW_POLICY,
// ADPTARRAY_MAX_SLOTS and ADPTARRAY_LOG_LEVEL.

type Book struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Year    int      `json:"year"`
}

func run() error {
	conf, err := adptarray.LoadConfig("")
	if err != nil {
		return err
	}
	opts, err := conf.Options()
	if err != nil {
		return err
	}

	tracker := behavior.Track[*Book](behavior.Deep[*Book](os.Stdout))
	shelf, err := adptarray.New[*Book](tracker, append(opts, adptarray.WithName("shelf"))...)
	if err != nil {
		return err
	}

	if err := shelf.Set(0, &Book{Title: "The C Programming Language", Authors: []string{"Kernighan", "Ritchie"}, Year: 1978}); err != nil {
		return err
	}
	if err := shelf.Set(3, &Book{Title: "The Go Programming Language", Authors: []string{"Donovan", "Kernighan"}, Year: 2015}); err != nil {
		return err
	}
	fmt.Printf("size after writing slot 3: %d\n", shelf.Size())

	if _, err := shelf.Lookup(1); err != nil {
		fmt.Printf("slot 1: %v\n", err)
	}

	book, found := shelf.Get(3)
	if found {
		book.Year = 2016
		if err := shelf.Set(3, book); err != nil {
			return err
		}
		tracker.Delete(book)
	}

	if err := shelf.PrintAll(); err != nil {
		return err
	}
	if err := shelf.Destroy(); err != nil {
		return err
	}

	fmt.Printf("copies=%d deletes=%d live=%d\n", tracker.Copies(), tracker.Deletes(), tracker.Live())
	for _, leaked := range tracker.LiveInstances() {
		fmt.Printf("not released: %s\n", leaked.Title)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
