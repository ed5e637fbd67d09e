// Package fs abstracts the file operations behind atomic blob writes so
// tests can inject I/O failures.
//
//   - [LocalFS]: the os package
//   - [FaultyFS]: wraps a FileSystem and fails writes, syncs, closes or
//     renames for matching file names
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.CreateTemp(dir, ".put-*")
//
// Tests inject faults:
//
//	faulty := fs.NewFaultyFS(nil)
//	faulty.AddRule("submesh-3.bin", fs.Fault{FailOnSync: true})
package fs
