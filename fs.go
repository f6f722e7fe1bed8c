package main

import "io/fs"

// FS is what both embed.FS and os.DirFS() provide, so data loading works the
// same whether the files are embedded in the executable or read from the
// source folder.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
