package earthengine

import "time"

// Region is a geographic bounding box in degrees.
type Region struct {
	West  float64
	South float64
	East  float64
	North float64
}

// GeoJSON renders the box as a closed polygon ring, counter-clockwise from
// the southwest corner, which is what the platform's region filter expects.
func (r Region) GeoJSON() map[string]any {
	ring := [][]float64{
		{r.West, r.South},
		{r.East, r.South},
		{r.East, r.North},
		{r.West, r.North},
		{r.West, r.South},
	}
	return map[string]any{
		"type":        "Polygon",
		"coordinates": [][][]float64{ring},
	}
}

// DateRange filters image acquisition instants. End is exclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Image is one asset inside a collection.
type Image struct {
	Name      string    `json:"name"`
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
}

// Time reports the image's acquisition instant.
func (img Image) Time() time.Time {
	return img.StartTime
}

// Task is the handle the platform returns for a submitted export.
type Task struct {
	Name string `json:"name"`
}

// ExportRequest describes one export-to-storage submission.
type ExportRequest struct {
	ImageName   string
	Bands       []string
	Description string
	Folder      string
	NamePrefix  string
	Region      Region
	Scale       float64
	MaxPixels   float64
	CRS         string
}

type listImagesResponse struct {
	Images        []Image `json:"images"`
	NextPageToken string  `json:"nextPageToken"`
}

type exportBody struct {
	ImageName        string           `json:"imageName"`
	BandIDs          []string         `json:"bandIds,omitempty"`
	Description      string           `json:"description"`
	Region           map[string]any   `json:"region"`
	Scale            float64          `json:"scale,omitempty"`
	MaxPixels        float64          `json:"maxPixels,omitempty"`
	CRS              string           `json:"crs,omitempty"`
	DriveDestination driveDestination `json:"driveDestination"`
}

type driveDestination struct {
	Folder         string `json:"folder,omitempty"`
	FilenamePrefix string `json:"filenamePrefix,omitempty"`
}
