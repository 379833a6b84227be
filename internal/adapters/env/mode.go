package env

import (
	"os"

	"github.com/3-lines-studio/vitrine/internal/core"
)

func DetectMode() core.Mode {
	if os.Getenv("VITRINE_DEV") == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}
