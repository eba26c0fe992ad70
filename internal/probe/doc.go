// Package probe reads image dimensions from file headers. Only the bytes
// needed to locate width and height are read; pixel data is never decoded.
//
// Types:
//   - Resolution (Width, Height; String → "WxH")
//
// Functions:
//   - ReadResolution(fs, path) → Resolution
//     Opens path on fs and dispatches on the header: DPX by magic, OpenEXR
//     and the common raster formats via h2non/filetype classification.
//   - Formats() → []string
//     Lists the header formats understood by ReadResolution.
//
// Format-specific parsers live in dpx.go and exr.go; the raster formats go
// through image.DecodeConfig with the decoders registered in prober.go.
package probe
