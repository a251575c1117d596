package constants

// Lines whose first byte is the comment marker are skipped by the reader
// and never written back.
const CommentMarker = '!'

// A note token containing CentsMarker is read as cents, anything else as a
// ratio.
const CentsMarker = "."

const RatioSeparator = "/"

// RatioBitSize is the width of each ratio component. Larger components are
// rejected, not widened.
const RatioBitSize = 32
