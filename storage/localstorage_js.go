//go:build js
// +build js

package storage

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// LocalStorage stores the score in window.localStorage.
type LocalStorage struct {
	Key string
}

// NewLocalStorage creates a store under key.
func NewLocalStorage(key string) *LocalStorage {
	return &LocalStorage{Key: key}
}

func localStorage() (ls *js.Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("storage: localStorage unavailable: %v", r)
		}
	}()
	ls = js.Global.Get("localStorage")
	if ls == nil || ls == js.Undefined {
		return nil, fmt.Errorf("storage: localStorage unavailable")
	}
	return ls, nil
}

// Load reads the stored score.
func (l *LocalStorage) Load() (score int, err error) {
	ls, err := localStorage()
	if err != nil {
		return 0, err
	}
	defer func() {
		if r := recover(); r != nil {
			score, err = 0, fmt.Errorf("storage: getItem: %v", r)
		}
	}()
	v := ls.Call("getItem", l.Key)
	if v == nil || v == js.Undefined {
		return 0, ErrNotFound
	}
	return parseScore(v.String())
}

// Save writes score.
func (l *LocalStorage) Save(score int) (err error) {
	ls, err := localStorage()
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("storage: setItem: %v", r)
		}
	}()
	ls.Call("setItem", l.Key, formatScore(score))
	return nil
}
