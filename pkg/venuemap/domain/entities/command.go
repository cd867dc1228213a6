package entities

type CommandOp string

const (
	OpAddSource         CommandOp = "addSource"
	OpAddLayer          CommandOp = "addLayer"
	OpAddImage          CommandOp = "addImage"
	OpSetFeatureState   CommandOp = "setFeatureState"
	OpSetLayoutProperty CommandOp = "setLayoutProperty"
	OpFlyTo             CommandOp = "flyTo"
	OpShowPopup         CommandOp = "showPopup"
	OpError             CommandOp = "error"
)

// Command is a single write to the browser render surface. Only the fields
// relevant to Op are set.
type Command struct {
	Op       CommandOp      `json:"op"`
	ID       string         `json:"id,omitempty"`
	Source   *Source        `json:"source,omitempty"`
	Layer    *Layer         `json:"layer,omitempty"`
	Image    *Image         `json:"image,omitempty"`
	Target   *FeatureTarget `json:"target,omitempty"`
	State    *FeatureState  `json:"state,omitempty"`
	LayerID  string         `json:"layerId,omitempty"`
	Property string         `json:"property,omitempty"`
	Value    string         `json:"value,omitempty"`
	Camera   *Camera        `json:"camera,omitempty"`
	Popup    *Popup         `json:"popup,omitempty"`
	Message  string         `json:"message,omitempty"`
}
