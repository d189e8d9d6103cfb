// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements components with content of their own, such
// as the labels created for labeled layout items.
package widget
