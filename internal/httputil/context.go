package httputil

// ContextURL is the gin context key of the external URL of the API.
const ContextURL = "baseURL"
