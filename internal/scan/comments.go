// Package scan extracts provider aliases and module dependencies from Terraform
// declaration files using textual pattern matching over comment-stripped content.
//
// Matching is deliberately textual, not semantic: comment markers inside quoted strings
// are treated as comments, which is a known imprecision of this approach.
package scan

import "regexp"

var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	slashCommentPattern = regexp.MustCompile(`(?m)//.*$`)
	hashCommentPattern  = regexp.MustCompile(`(?m)#.*$`)
)

// StripComments removes all block comments (/* ... */) and line comments (// and #)
// from the given Terraform content.
func StripComments(content string) string {
	content = blockCommentPattern.ReplaceAllString(content, "")
	content = slashCommentPattern.ReplaceAllString(content, "")
	content = hashCommentPattern.ReplaceAllString(content, "")

	return content
}
