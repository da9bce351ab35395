// Package archive wraps the external database dump/restore utility behind an
// injectable capability, so services never shell out directly.
package archive

import "context"

// Tool serializes the full database to an archive file and back.
//
// Both operations block until the underlying utility exits; cancelling ctx
// kills it.
type Tool interface {
	Dump(ctx context.Context, archivePath string) error
	Restore(ctx context.Context, archivePath string) error
}
