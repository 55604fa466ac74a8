package domain

// InstantLaunch is an entry of the instant launch directory
type InstantLaunch struct {
	ID                     string `json:"id"`
	QuickLaunchID          string `json:"quick_launch_id"`
	QuickLaunchName        string `json:"quick_launch_name"`
	QuickLaunchDescription string `json:"quick_launch_description"`
	AppID                  string `json:"app_id"`
	AppName                string `json:"app_name"`
	AppDescription         string `json:"app_description"`
	AddedBy                string `json:"added_by"`
	AddedOn                string `json:"added_on"`
}
