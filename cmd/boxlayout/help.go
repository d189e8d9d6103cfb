// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The boxlayout command solves a layout description and reports the result.

Usage:

	boxlayout [flags] <file.toml>

The layout file is a TOML description of a tree of box layouts, as
documented by package layoutfile. The layout is solved for a window of
the size given by -size, and the bounds of every named component are
printed, sorted by name.

The -size flag specifies the window size as WIDTHxHEIGHT in pixels. The
default is 640x480.

The -v flag prints the whole item tree, including spacers, labels and
sub-layouts, instead of the component list.

The -o flag writes a PNG rendering of the solved layout to the given file.
Components are drawn as colored boxes and labels as text.

The -scale flag resamples the rendering by the given factor.
`
