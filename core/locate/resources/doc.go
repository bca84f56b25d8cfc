/*
Package resources resolves fonts for an application.

As resolving a font may be a time-consuming task, involving searches in
system font directories or calls to fontconfig, ResolveFont works in an
async/await fashion by returning a promise. The client calls the promise
later to receive the loaded font; the call blocks until loading has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'otsvg.resources'.
func tracer() tracing.Trace {
	return tracing.Select("otsvg.resources")
}
