// Package commitpolicy provides a public Go API for loading a repository's
// commit policy and linting commit messages against it.
//
// Basic usage:
//
//	policy, err := commitpolicy.Load(commitpolicy.Options{
//	    Path: "/path/to/repo",
//	})
//	report := policy.Lint("feat(crypto): add price model")
//	fmt.Println(report.Valid) // true
//
//	fmt.Println(policy.Types())               // [build chore ci ...]
//	fmt.Println(policy.ChangelogTitle("feat")) // Features true
package commitpolicy

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/config"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/git"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/lint"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/output"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Report is the outcome of linting one message.
type Report = lint.Report

// Problem is one rule violation in a Report.
type Problem = lint.Problem

// PromptSchema is the authoring prompt in presentation order.
type PromptSchema = output.PromptSchema

// Options configures policy loading.
type Options struct {
	// Path inside the repository. Defaults to "." if empty. The directory
	// does not have to be a git repository.
	Path string

	// ConfigFile is the path to a descriptor file. If empty, the standard
	// file names are searched in the repository root.
	ConfigFile string

	// NoDefaults builds the policy from the file alone instead of layering
	// it over the built-in policy.
	NoDefaults bool
}

// Policy is a loaded and validated commit policy.
type Policy struct {
	cfg    *config.Config
	linter *lint.Linter
}

// Load builds the policy for a repository.
func Load(opts Options) (*Policy, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}

	// 1. Resolve the directory holding the descriptor.
	dir := path
	if repo, err := git.Open(path); err == nil {
		dir = repo.WorkingDirectory()
	} else {
		log.WithError(err).Debug("no git repository found")
	}

	// 2. Layer the descriptor file over the base.
	cfg, err := config.Load(dir, opts.ConfigFile, opts.NoDefaults)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return newPolicy(cfg)
}

// Default returns the built-in project policy.
func Default() (*Policy, error) {
	cfg, err := config.NewBuilder().Build()
	if err != nil {
		return nil, err
	}
	return newPolicy(cfg)
}

func newPolicy(cfg *config.Config) (*Policy, error) {
	linter, err := lint.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Policy{cfg: cfg, linter: linter}, nil
}

// Lint checks one raw commit message.
func (p *Policy) Lint(message string) Report {
	return p.linter.Lint(message)
}

// Types returns the allowed commit types in declaration order.
func (p *Policy) Types() []string {
	return append([]string(nil), p.cfg.TypeEnum()...)
}

// Scopes returns the allowed scopes in declaration order.
func (p *Policy) Scopes() []string {
	return append([]string(nil), p.cfg.ScopeEnum()...)
}

// HelpURL returns the link printed after a failing report.
func (p *Policy) HelpURL() string {
	return p.cfg.HelpURLOrEmpty()
}

// ChangelogTitle returns the changelog section title for a commit type.
func (p *Policy) ChangelogTitle(commitType string) (string, bool) {
	opt := p.cfg.Prompt.TypeOptions()[commitType]
	if opt == nil || opt.Title == "" {
		return "", false
	}
	return opt.Title, true
}

// Prompt returns the authoring prompt schema.
func (p *Policy) Prompt() PromptSchema {
	return output.BuildPromptSchema(p.cfg)
}

// Descriptor returns the effective descriptor as YAML.
func (p *Policy) Descriptor() ([]byte, error) {
	data, err := yaml.Marshal(p.cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling descriptor: %w", err)
	}
	return data, nil
}
