// SPDX-License-Identifier: EPL-2.0

// Package hrtf selects and loads head related impulse responses from the
// MIT KEMAR measurements of the horizontal plane.
//
// A speaker azimuth is rounded to the 5 degree grid of the measurements
// and mapped to files by the Selector of a Database:
//
//	db, _ := hrtf.ParseDatabase("kemar_compact")
//	sel := db.Selector().Select(183) // compact/elev0/H0e175a.wav, swapped
//
// Loader reads the selected files from any fs.FS and Cache shares the
// loaded entries between speakers:
//
//	cache := hrtf.NewCache(hrtf.NewLoader(os.DirFS("kemar"), db))
//	entry, err := cache.Get(92)
package hrtf
