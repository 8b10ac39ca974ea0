// Package xlgrab extracts values from spreadsheet files by cell reference
// and projects the extracted key-value records into CSV tables or JSON.
//
// The package is built from three small, stateless pieces: an address
// resolver turning "B12" style references into zero-based coordinates, a
// record extractor assembling ordered field→value mappings from a loaded
// grid, and a tabular projector flattening records into aligned rows with a
// resolved column order.
package xlgrab
