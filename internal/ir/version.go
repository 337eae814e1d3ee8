package ir

// GeneratorVersion is the mdgen generator version recorded with every run.
const GeneratorVersion = "0.1.0"
