// Package textutil provides filename helpers for output base names.
package textutil
