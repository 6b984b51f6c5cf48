package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xorpkgVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	xorpkg := NewAppBuild("xorpkg", "cmd/xorpkg", xorpkgVersion)
	xorpkg.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", xorpkgVersion).
			CgoEnabled(false)
	})
	for _, variant := range [][2]string{
		{"windows", "amd64"},
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
	} {
		xorpkg.Variant(variant[0], variant[1])
	}
	b.ImportApp(xorpkg)

	b.Execute()
}
