// Package cli implements the interactive blogctl shell: a REPL over the
// blogging platform API with an encrypted local credential store, so a login
// survives restarts until the token expires or the user logs out.
package cli
