// Static identity configuration: who can use the system, which roles they
// apply for, and the signature details stamped into messages and letters.
// Identities are configuration, not runtime data.

package registry

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownIdentity = errors.New("unknown identity")

// Identity is one configured user of the system.
type Identity struct {
	Username   string
	FullName   string
	Headline   string // title line under the name on the cover letter
	Email      string // sending address
	Phone      string
	LinkURL    string // portfolio or LinkedIn, whichever the identity signs with
	LinkLabel  string
	ResumeFile string // file name inside the configured resume directory
	Roles      []string
}

// HasRole reports whether role is in the identity's allowed role list.
func (id *Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

var identities = map[string]*Identity{
	"vishnu": {
		Username:   "vishnu",
		FullName:   "Vishnuvardhan Chowhan",
		Headline:   "Data Analytics & Automation Specialist | Hyderabad, India",
		Email:      "vishnuvardhan.chowhan@gmail.com",
		Phone:      "7036363267",
		LinkURL:    "https://notion-sparkle-site.lovable.app/",
		LinkLabel:  "Portfolio",
		ResumeFile: "VishnuvardhanChowhanResume.pdf",
		Roles: []string{
			"Data Analyst", "Data Scientist", "Data Engineer", "Machine Learning Engineer",
			"Data Governance Analyst", "Product Analyst", "Python Developer",
		},
	},
	"sakshi": {
		Username:   "sakshi",
		FullName:   "Sakshi Gawande",
		Headline:   "Full Stack Developer",
		Email:      "sakshigawandecse@gmail.com",
		Phone:      "7057634407",
		LinkURL:    "https://linkedin.com/in/sakshi-gawande-0095351ab",
		LinkLabel:  "LinkedIn",
		ResumeFile: "SakshiGawandeResume.pdf",
		Roles: []string{
			"Full Stack Developer", "Frontend Developer", "Backend Developer",
			"Software Developer", "Process Associate",
		},
	},
	"sai": {
		Username:   "sai",
		FullName:   "Polloju Sai Kiran",
		Headline:   "Full Stack Engineer | Hyderabad, India",
		Email:      "pollojukiran06@gmail.com",
		Phone:      "7093263001",
		LinkURL:    "https://www.linkedin.com/in/polloju-sai-kiran/",
		LinkLabel:  "LinkedIn",
		ResumeFile: "polloju_SaiKiran_Resume.pdf",
		Roles: []string{
			"Full Stack Engineer", "Android Developer", "Frontend Developer",
			"Mobile Developer", "Software Developer", "Software Engineer",
		},
	},
	"harsha": {
		Username:   "harsha",
		FullName:   "Harsha Jha",
		Headline:   "Data Analyst",
		Email:      "harshajha13@gmail.com",
		Phone:      "7836907197",
		ResumeFile: "HarshaJhaResume.pdf",
		Roles:      []string{"Data Analyst", "Market Researcher", "Project Manager"},
	},
	"bhanu": {
		Username:   "bhanu",
		FullName:   "Macharla Venkata Bhanu",
		Headline:   "Full Stack Developer",
		Email:      "macharlabhanu169@gmail.com",
		Phone:      "6302376836",
		LinkURL:    "https://www.linkedin.com/in/macharla-venkata-bhanu/",
		LinkLabel:  "LinkedIn",
		ResumeFile: "MacharlaVenkataBhanuResume.pdf",
		Roles:      []string{"Full Stack Developer", "Software Developer", "Backend Developer"},
	},
}

// Get looks up an identity by username.
func Get(username string) (*Identity, error) {
	id, ok := identities[username]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentity, username)
	}
	return id, nil
}

// Usernames returns all configured usernames, sorted.
func Usernames() []string {
	names := make([]string, 0, len(identities))
	for name := range identities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
