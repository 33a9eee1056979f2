// Package gpubuf abstracts the GPU buffer operations the text renderer
// needs: scoped creation, destruction, writes and mapping of vertex/index
// buffers, plus the capability probes that decide how a renderer writes
// into them.
//
// Backends register themselves via [Register], typically from an init
// function, and are selected by name with [Get] or by priority with
// [Default]:
//
//	import _ "github.com/barktree707/magnum/gpubuf/memory"
//
//	dev := gpubuf.Default()
//	defer dev.Close()
//
// The memory backend is a pure-Go device usable everywhere; the native
// backend drives a real GPU through gogpu/wgpu. Devices are internally
// synchronized, so independent renderers may share one device.
package gpubuf
