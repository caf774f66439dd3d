// Package message parses conventional commit messages and decides whether a
// message is exempt from linting.
package message

import (
	"regexp"
	"strings"
)

// Scissors marks the point after which git discards the rest of an
// edited commit message.
const Scissors = "# ------------------------ >8 ------------------------"

var (
	headerRe    = regexp.MustCompile(`^(\w*)(?:\((.*)\))?(!)?: (.*)$`)
	noteRe      = regexp.MustCompile(`^(BREAKING CHANGE|BREAKING-CHANGE):\s*(.*)$`)
	closingRe   = regexp.MustCompile(`(?i)^(close|closes|closed|fix|fixes|fixed|resolve|resolves|resolved)\s+#\d+`)
	referenceRe = regexp.MustCompile(`(?i)(?:\b(close|closes|closed|fix|fixes|fixed|resolve|resolves|resolved)\s+)?#(\d+)\b`)
	scopeSepRe  = regexp.MustCompile(`[/\\,]`)
)

// Note is a footer note such as "BREAKING CHANGE: ...".
type Note struct {
	Title string
	Text  string
}

// Reference is an issue reference ("#12", "closes #12").
type Reference struct {
	Action string
	Issue  string
}

// Commit is a parsed commit message.
type Commit struct {
	Raw        string
	Header     string
	Type       string
	Scope      string
	Subject    string
	Breaking   bool
	Body       string
	Footer     string
	Notes      []Note
	References []Reference

	// Lines are the cleaned message lines: comments and scissors removed,
	// trailing blank lines trimmed.
	Lines []string

	footerStart int
}

// Parse parses raw into a Commit. A header that does not follow the
// "type(scope)!: subject" form leaves Type, Scope and Subject empty.
func Parse(raw string) Commit {
	c := Commit{Raw: raw}
	c.Lines = cleanLines(raw)
	if len(c.Lines) == 0 {
		return c
	}

	c.Header = c.Lines[0]
	if m := headerRe.FindStringSubmatch(c.Header); m != nil {
		c.Type = m[1]
		c.Scope = m[2]
		c.Breaking = m[3] == "!"
		c.Subject = m[4]
	}

	c.footerStart = len(c.Lines)
	for i := 1; i < len(c.Lines); i++ {
		if isFooterLine(c.Lines[i]) {
			c.footerStart = i
			break
		}
	}

	c.Body = joinTrimmed(c.Lines[1:c.footerStart])
	c.Footer = joinTrimmed(c.Lines[c.footerStart:])
	c.Notes = parseNotes(c.Lines[c.footerStart:])
	if len(c.Notes) > 0 {
		c.Breaking = true
	}
	c.References = parseReferences(c.Lines)
	return c
}

// Scopes returns the individual scopes of a multi-scope header such as
// "feat(api,web): ...".
func (c Commit) Scopes() []string {
	if c.Scope == "" {
		return nil
	}
	var out []string
	for _, s := range scopeSepRe.Split(c.Scope, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// BodyLines returns the body split into lines.
func (c Commit) BodyLines() []string {
	return splitNonEmpty(c.Body)
}

// FooterLines returns the footer split into lines.
func (c Commit) FooterLines() []string {
	return splitNonEmpty(c.Footer)
}

// BodyLeadingBlank reports whether the body, if any, is separated from the
// header by a blank line.
func (c Commit) BodyLeadingBlank() bool {
	if c.Body == "" {
		return true
	}
	return strings.TrimSpace(c.Lines[1]) == ""
}

// FooterLeadingBlank reports whether the footer, if any, is preceded by a
// blank line.
func (c Commit) FooterLeadingBlank() bool {
	if c.Footer == "" {
		return true
	}
	return strings.TrimSpace(c.Lines[c.footerStart-1]) == ""
}

// Normalize converts CRLF line endings, drops comment lines and everything
// below the scissors line, and trims trailing blank lines.
func Normalize(raw string) string {
	return strings.Join(cleanLines(raw), "\n")
}

func cleanLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, Scissors) {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isFooterLine(line string) bool {
	return noteRe.MatchString(line) || closingRe.MatchString(line)
}

func parseNotes(lines []string) []Note {
	var notes []Note
	for _, line := range lines {
		if m := noteRe.FindStringSubmatch(line); m != nil {
			notes = append(notes, Note{Title: m[1], Text: m[2]})
			continue
		}
		if len(notes) > 0 && !closingRe.MatchString(line) {
			last := &notes[len(notes)-1]
			last.Text = strings.TrimSpace(last.Text + "\n" + line)
		}
	}
	return notes
}

func parseReferences(lines []string) []Reference {
	var refs []Reference
	for _, line := range lines {
		for _, m := range referenceRe.FindAllStringSubmatch(line, -1) {
			refs = append(refs, Reference{Action: strings.ToLower(m[1]), Issue: m[2]})
		}
	}
	return refs
}

func joinTrimmed(lines []string) string {
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
