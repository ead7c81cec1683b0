// Package fwversion encodes a firmware major/minor version pair as a single
// integer.
//
// The numeric form is major*100 + minor, so 9.14 becomes 914 and 1.5 becomes
// 105. The minor component is limited to two digits ([MaxMinor]) so that no
// two pairs share a numeric form. A version may also be given directly as a
// number, in which case it carries no human-readable text.
package fwversion
