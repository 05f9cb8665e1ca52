package models

// Source is an integration data is read from.
type Source struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	AppURL    *string `json:"app_url,omitempty"`
}

// Destination is an integration data is written to.
type Destination struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	AppURL    *string `json:"app_url,omitempty"`
}

// Connection is a configured link to a source or a destination.
type Connection struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	ShortName   string       `json:"short_name"`
	Status      string       `json:"status"`
	Source      *Source      `json:"source,omitempty"`
	Destination *Destination `json:"destination,omitempty"`
}

// Sync moves data from a source connection to an optional destination
// connection.
type Sync struct {
	ID                      string      `json:"id"`
	Name                    string      `json:"name"`
	Description             *string     `json:"description,omitempty"`
	Status                  string      `json:"status"`
	SourceConnectionID      string      `json:"source_connection_id"`
	DestinationConnectionID *string     `json:"destination_connection_id,omitempty"`
	SourceConnection        *Connection `json:"source_connection,omitempty"`
	DestinationConnection   *Connection `json:"destination_connection,omitempty"`
}
