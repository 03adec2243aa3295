package panicutil

import (
	"github.com/sourcegraph/conc/panics"
)

// DDS runs the function with a double defer sandwich and recovers panics as errors.
// If the function returns normally, the function's error value is returned.
// If the function panics, the recovered value is returned as a *panics.ErrRecovered.
// If the function calls runtime.Goexit, it returns nil.
func DDS(f func() error) error {
	var dds DoubleDeferSandwich
	return dds.Invoke(f)
}

// DoubleDeferSandwich distinguishes a normal return, a panic, and a
// runtime.Goexit in the invoked function.
type DoubleDeferSandwich struct {
	// OnGoexit is called when the function calls runtime.Goexit.
	OnGoexit func()
}

// Invoke runs the function and recovers panics as errors.
// If the function returns normally, the function's error value is returned.
// If the function panics, the recovered value is returned as a *panics.ErrRecovered.
// If the function calls runtime.Goexit, OnGoexit is called before the goroutine exits.
func (dds *DoubleDeferSandwich) Invoke(f func() error) (err error) {
	var (
		normalReturn bool
		recovered    bool
		panicValue   panics.Recovered
	)
	defer func() {
		switch {
		case normalReturn:
			return
		case recovered:
			err = panicValue.AsError()
		default:
			if dds.OnGoexit != nil {
				dds.OnGoexit()
			}
		}
	}()
	func() {
		defer func() {
			panicValue = panics.NewRecovered(2, recover())
		}()
		err = f()
		normalReturn = true
	}()
	if !normalReturn {
		recovered = true
	}
	return
}
