package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// IssueGroup pairs a file path with its issues ordered by line. Groups are a
// pure projection over an issue list, recomputed on every run; they own no
// state of their own.
type IssueGroup struct {
	File   string  `json:"file"`
	Issues []Issue `json:"issues"`
}

// fileCollator orders group paths the way a file browser would, not by raw
// byte value.
var fileCollator = collate.New(language.Und)

// GroupAndSort buckets issues by file and returns the groups sorted by path
// using locale-aware comparison, with each group's issues ascending by line.
// The sort is stable, so issues on the same line keep their decode order.
func GroupAndSort(issues []Issue) []IssueGroup {
	byFile := make(map[string][]Issue)
	var files []string
	for _, issue := range issues {
		if _, seen := byFile[issue.File]; !seen {
			files = append(files, issue.File)
		}
		byFile[issue.File] = append(byFile[issue.File], issue)
	}

	sort.SliceStable(files, func(i, j int) bool {
		return fileCollator.CompareString(files[i], files[j]) < 0
	})

	groups := make([]IssueGroup, 0, len(files))
	for _, file := range files {
		group := IssueGroup{File: file, Issues: byFile[file]}
		sort.SliceStable(group.Issues, func(i, j int) bool {
			return group.Issues[i].Line < group.Issues[j].Line
		})
		groups = append(groups, group)
	}
	return groups
}
