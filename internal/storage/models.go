package storage

// URLRecord is a stored short code together with the URL it stands for.
type URLRecord struct {
	ID       int64  `json:"id"`
	Short    string `json:"short_url"`
	Original string `json:"long_url"`
}
