//go:build e2e && unix

package main

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory for the app's files
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteMeetingPage writes a saved meeting page listing names in its people
// panel and returns its path
func (tf *TUITestFramework) WriteMeetingPage(names ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><body>\n<div role=\"list\">\n")
	for _, name := range names {
		fmt.Fprintf(&b, "<div role=\"listitem\"><div><div><div><span>%s</span></div></div></div></div>\n", html.EscapeString(name))
	}
	b.WriteString("</div>\n</body></html>\n")

	path := filepath.Join(tf.workspace, "meet.html")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteMembersJSON writes a GET_MEMBERS reply file and returns its path
func (tf *TUITestFramework) WriteMembersJSON(names ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	body := fmt.Sprintf("{\"names\":[%s],\"images\":[]}\n", strings.Join(quoted, ","))

	path := filepath.Join(tf.workspace, "members.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", err
	}
	return path, nil
}
