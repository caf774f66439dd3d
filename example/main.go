// Example program demonstrating the commitpolicy library API.
//
// Run from the repo root:
//
//	go run ./example/
//
// Pass commit messages as arguments to lint them:
//
//	go run ./example/ "feat(crypto): add price model" "Fix: Stuff."
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MyCarrier-DevOps/go-commitlint/pkg/commitpolicy"
)

func main() {
	policy, err := commitpolicy.Load(commitpolicy.Options{Path: "."})
	if err != nil {
		log.Fatalf("loading commit policy failed: %v", err)
	}

	printPolicy(policy)

	messages := os.Args[1:]
	if len(messages) == 0 {
		messages = []string{"feat(crypto): add price model", "Feature: Add Model."}
	}
	for _, msg := range messages {
		printReport(policy.Lint(msg))
	}
}

func printPolicy(policy *commitpolicy.Policy) {
	fmt.Println("=== Commit Types ===")
	for _, t := range policy.Types() {
		title, _ := policy.ChangelogTitle(t)
		fmt.Printf("%-12s %s\n", t, title)
	}
	fmt.Println()

	fmt.Println("=== Scopes ===")
	for _, s := range policy.Scopes() {
		fmt.Println(s)
	}
	fmt.Println()
}

func printReport(report commitpolicy.Report) {
	fmt.Printf("=== %s ===\n", report.Input)
	if report.Ignored {
		fmt.Printf("ignored (%s)\n\n", report.IgnoredBy)
		return
	}
	for _, p := range report.Errors {
		fmt.Printf("error    %-20s %s\n", p.Name, p.Message)
	}
	for _, p := range report.Warnings {
		fmt.Printf("warning  %-20s %s\n", p.Name, p.Message)
	}
	fmt.Printf("valid: %t\n\n", report.Valid)
}
