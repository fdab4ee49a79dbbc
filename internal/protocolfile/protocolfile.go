// Package protocolfile reads and writes coded protocols as YAML documents,
// the offline exchange format of the scorectl tool.
//
//	subject:
//	  name: Jane Doe
//	  birthdate: 1990-04-12
//	  test_date: 2025-03-01
//	responses:
//	  - card: I
//	    n: 1
//	    location: W
//	    dev_qual: o
//	    determinants: F
//	    form_qual: o
//	    contents: A
//	    popular: P
//	    z: ZW
package protocolfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// CardLabel accepts a card written either as a Roman numeral or as a number.
type CardLabel string

// UnmarshalYAML implements yaml.Unmarshaler for CardLabel.
func (c *CardLabel) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: card must be a scalar", value.Line)
	}
	*c = CardLabel(value.Value)
	return nil
}

type Subject struct {
	Name      string `yaml:"name"`
	Gender    string `yaml:"gender,omitempty"`
	Birthdate string `yaml:"birthdate,omitempty"`
	TestDate  string `yaml:"test_date,omitempty"`
	// Age overrides the age derived from the two dates.
	Age int `yaml:"age,omitempty"`
}

type Response struct {
	Card         CardLabel `yaml:"card"`
	N            int       `yaml:"n"`
	Time         string    `yaml:"time,omitempty"`
	Response     string    `yaml:"response,omitempty"`
	Inquiry      string    `yaml:"inquiry,omitempty"`
	Rotation     string    `yaml:"rotation,omitempty"`
	Location     string    `yaml:"location"`
	LocationNum  *int      `yaml:"loc_num,omitempty"`
	DevQual      string    `yaml:"dev_qual"`
	Determinants string    `yaml:"determinants"`
	Pair         string    `yaml:"pair,omitempty"`
	FormQual     string    `yaml:"form_qual"`
	Contents     string    `yaml:"contents"`
	Popular      string    `yaml:"popular,omitempty"`
	Z            string    `yaml:"z,omitempty"`
	Special      string    `yaml:"special,omitempty"`
	Comment      string    `yaml:"comment,omitempty"`
}

// File is one protocol document.
type File struct {
	Subject   Subject    `yaml:"subject"`
	Responses []Response `yaml:"responses"`
}

// Decode parses a protocol document.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode protocol: empty document")
		}
		return nil, fmt.Errorf("decode protocol: %w", err)
	}
	return &f, nil
}

// Load reads a protocol document from path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open protocol file: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Encode writes f as YAML.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode protocol: %w", err)
	}
	return enc.Close()
}

// ResolveAge returns the subject's age in years at the test date. An
// explicit age wins over the dates.
func (s Subject) ResolveAge() (int, error) {
	if s.Age > 0 {
		return s.Age, nil
	}
	if s.Birthdate == "" || s.TestDate == "" {
		return 0, domain.NewValidationError("subject", "age or birthdate and test_date required")
	}
	birth, err := time.Parse(dateLayout, s.Birthdate)
	if err != nil {
		return 0, domain.NewValidationError("birthdate", "must be YYYY-MM-DD")
	}
	test, err := time.Parse(dateLayout, s.TestDate)
	if err != nil {
		return 0, domain.NewValidationError("test_date", "must be YYYY-MM-DD")
	}
	if test.Before(birth) {
		return 0, domain.NewValidationError("test_date", "must not precede birthdate")
	}
	return domain.AgeAt(birth, test), nil
}

// DomainResponses converts the document's responses.
func (f *File) DomainResponses() []domain.Response {
	out := make([]domain.Response, len(f.Responses))
	for i, r := range f.Responses {
		out[i] = domain.Response{
			Card:         string(r.Card),
			ResponseNum:  r.N,
			Time:         r.Time,
			Verbalized:   r.Response,
			Inquiry:      r.Inquiry,
			Rotation:     r.Rotation,
			Comment:      r.Comment,
			LocationNum:  r.LocationNum,
			Location:     r.Location,
			DevQual:      r.DevQual,
			Determinants: r.Determinants,
			Pair:         r.Pair,
			FormQual:     r.FormQual,
			Content:      r.Contents,
			Popular:      r.Popular,
			Z:            r.Z,
			Special:      r.Special,
		}
	}
	return out
}

// FromDomain builds a document from stored data.
func FromDomain(subj domain.Subject, responses []domain.Response) *File {
	f := &File{
		Subject: Subject{
			Name:   subj.Name,
			Gender: subj.Gender.String(),
			Age:    subj.Age,
		},
		Responses: make([]Response, len(responses)),
	}
	if !subj.Birthdate.IsZero() {
		f.Subject.Birthdate = subj.Birthdate.Format(dateLayout)
	}
	if !subj.TestDate.IsZero() {
		f.Subject.TestDate = subj.TestDate.Format(dateLayout)
	}
	for i, r := range responses {
		f.Responses[i] = Response{
			Card:         CardLabel(r.Card),
			N:            r.ResponseNum,
			Time:         r.Time,
			Response:     r.Verbalized,
			Inquiry:      r.Inquiry,
			Rotation:     r.Rotation,
			Location:     r.Location,
			LocationNum:  r.LocationNum,
			DevQual:      r.DevQual,
			Determinants: r.Determinants,
			Pair:         r.Pair,
			FormQual:     r.FormQual,
			Contents:     r.Content,
			Popular:      r.Popular,
			Z:            r.Z,
			Special:      r.Special,
			Comment:      r.Comment,
		}
	}
	return f
}
