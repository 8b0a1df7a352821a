package locale

import "embed"

//go:embed locales/*.yaml
var builtinFS embed.FS

// Builtin returns a resolver over the locale tables shipped with this package.
func Builtin() *FSResolver {
	return NewEmbeddedFsResolver(builtinFS, "locales")
}
