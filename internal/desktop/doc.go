// Package desktop opens folders in the platform file manager.
package desktop
