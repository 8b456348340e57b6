package declui

import (
	"fmt"
	"os"
)

// WarnFunc receives non-fatal diagnostics such as deprecation warnings.
type WarnFunc func(msg string)

var warnFunc WarnFunc = func(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// SetWarnFunc replaces the destination for warnings and returns the
// previous one. Pass nil to silence warnings.
func SetWarnFunc(f WarnFunc) WarnFunc {
	prev := warnFunc
	warnFunc = f
	return prev
}

func warnf(format string, args ...any) {
	if warnFunc != nil {
		warnFunc(fmt.Sprintf(format, args...))
	}
}
