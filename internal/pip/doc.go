// Package pip installs Python requirements for the pip, pipsi, and pipx directives.
//
// A directive's configuration is either a bare requirements file path or a
// mapping with the keys file, binary, user, stdout, and stderr. The requirements
// file is resolved against the host base directory and turned into a list of
// package references: pip receives the whole file through "-r <path>", while
// pipsi and pipx, which cannot read requirements files, receive one reference
// per non-blank, non-comment line.
//
// Environment variables in the file path are expanded before "~"; references to
// unset variables are kept as written. The "-r <path>" reference is not quoted,
// so a resolved path containing spaces or shell metacharacters breaks the pip
// directive. Keep requirements files under a path without spaces.
//
// Each reference is installed with "<binary> install [--user] <reference>" run
// through the shell in the base directory, one at a time. Exit codes 0 and 1 are
// accepted; any other code stops the batch. Packages installed before a failure
// are left in place.
package pip
