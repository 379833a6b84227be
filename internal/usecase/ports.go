package usecase

import (
	"github.com/3-lines-studio/vitrine/internal/adapters/fs"
	"github.com/3-lines-studio/vitrine/internal/core"
)

type Renderer interface {
	Render(source string) (string, error)
	StylesheetCSS() (string, error)
}

type EntryParser interface {
	ParseEntry(source string, data []byte) (core.Entry, error)
}

type CLIOutput interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
