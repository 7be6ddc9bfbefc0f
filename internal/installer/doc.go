// Package installer downloads a package archive and extracts it into the
// first workspace folder, under a directory named after the package.
//
// Install never reports through the UI itself. It returns a Result that the
// caller hands to Render, which turns it into at most one notification.
package installer
