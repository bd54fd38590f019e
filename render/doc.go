// Package render draws scenes. Preview rasterizes with gg for the screen;
// ExportPNG goes through the vector canvas and crops the poster tight to its
// content for download.
//
// Both draw the scene's layers in ascending stacking key order, so hearts
// always land on top of blobs.
package render
