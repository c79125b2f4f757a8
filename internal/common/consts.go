package common

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"
