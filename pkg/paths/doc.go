// Package paths provides the path handling shared by the shrinky renderers.
//
// It covers:
//
//   - Normalizing user-supplied paths (quotes, "~" expansion)
//   - Discovering the SCM root of a directory (nearest ancestor with .git)
//   - Abbreviating paths for a prompt ("~/d/p/gdot/src")
//   - Capping text from the left, keeping the informative tail
//   - Cleaning PATH-style lists (clean_path)
//   - XDG locations of the configuration file
//
// # Usage
//
//	home := paths.HomeDir()
//	dir := paths.ResolvePath(`"~/dev/gdot/src"`, home)
//	prefix, parts := paths.FolderParts(dir, home)
//	short := strings.Join(paths.ShortenPath(prefix, parts, paths.DefaultMaxParts), "/")
//	// short == "~/dev/gdot/src"
//
//	root := paths.FindSCMRoot(filesystem.NewOS(), dir) // "/home/user/dev/gdot"
package paths
