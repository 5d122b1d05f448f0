package internal

// Version is the modelcheck release version
const Version = "0.3.0"
