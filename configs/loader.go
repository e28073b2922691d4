package configs

import (
	"errors"
	"iter"
	"math/big"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

type Loader struct {
	getRoots func() ([]rootInfo, error)
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {

			var schema cue.Value
			if schemaSrc != "" {
				ctx := cuecontext.New()
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				ctx := cuecontext.New()
				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if err := value.Err(); err == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

// LookupFirst returns the value at path in the first file defining it.
// Files are searched in the order given to NewLoader.
func (l Loader) LookupFirst(path string) (ret cue.Value, err error) {
	roots, err := l.getRoots()
	if err != nil {
		return ret, err
	}

	cuePath := cue.ParsePath(path)
	for _, info := range roots {
		value := info.value.LookupPath(cuePath)
		if err := value.Err(); err == nil && value.Exists() {
			return value, nil
		}
	}

	return ret, ErrValueNotFound
}

func (l Loader) AssignFirst(path string, target any) error {
	value, err := l.LookupFirst(path)
	if err != nil {
		return err
	}
	return value.Decode(target)
}

// FirstBigInt reads an integer of any size. It returns nil if path is not defined.
func (l Loader) FirstBigInt(path string) (*big.Int, error) {
	value, err := l.LookupFirst(path)
	if errors.Is(err, ErrValueNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return value.Int(nil)
}
