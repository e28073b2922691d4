package configs

// Configurable is implemented by setting types read from CUE files.
// ConfigExpr names the CUE path holding the value.
type Configurable interface {
	ConfigExpr() string
}
