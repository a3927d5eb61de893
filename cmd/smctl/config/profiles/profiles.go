package profiles

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/hectane/go-acl"
	"github.com/opst/smctl/cmd/smctl/config/open"
	yaml "gopkg.in/yaml.v3"
)

var ErrProfileStoreNotFound = errors.New("profile store is not found")
var ErrCannotCreateConfig = errors.New("cannot create config file")
var ErrCannotUpdateConfig = errors.New("cannot update config file")
var ErrProfileInvalid = errors.New("smctl profile is invalid")

// ProfileStore is a map from profile name to Profile.
type ProfileStore map[string]*Profile

// Credentials are static AWS credentials.
//
// Leave them empty to use the default credential chain of the AWS SDK.
type Credentials struct {
	AccessKeyID     string `yaml:"accessKeyId,omitempty"`
	SecretAccessKey string `yaml:"secretAccessKey,omitempty"`
	SessionToken    string `yaml:"sessionToken,omitempty"`
}

func (c Credentials) IsZero() bool {
	return c.AccessKeyID == "" && c.SecretAccessKey == "" && c.SessionToken == ""
}

// Profile tells smctl where and how to reach SageMaker.
type Profile struct {
	// AWS region, like "us-east-1".
	Region string `yaml:"region"`

	// profile name in the shared AWS config (~/.aws/config).
	//
	// Empty means the default of the AWS SDK.
	AWSProfile string `yaml:"awsProfile,omitempty"`

	// Endpoint overrides the SageMaker endpoint URL.
	Endpoint string `yaml:"endpoint,omitempty"`

	// MaxAttempts is passed to the retryer of the AWS SDK. 0 means the SDK default.
	MaxAttempts int `yaml:"maxAttempts,omitempty"`

	Credentials Credentials `yaml:"credentials,omitempty"`
}

func verifyUrl(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// Verify Profile
//
// # Return
//
// nil if it is valid. Otherwise, ErrProfileInvalid error.
func (p *Profile) Verify() error {
	if p.Region == "" {
		return fmt.Errorf("%w: region is required", ErrProfileInvalid)
	}
	if p.Endpoint != "" && !verifyUrl(p.Endpoint) {
		return fmt.Errorf("%w: endpoint is not URL: %s", ErrProfileInvalid, p.Endpoint)
	}
	if p.MaxAttempts < 0 {
		return fmt.Errorf("%w: maxAttempts should not be negative: %d", ErrProfileInvalid, p.MaxAttempts)
	}
	if c := p.Credentials; !c.IsZero() && (c.AccessKeyID == "" || c.SecretAccessKey == "") {
		return fmt.Errorf(
			"%w: credentials needs both of accessKeyId and secretAccessKey", ErrProfileInvalid,
		)
	}
	return nil
}

// LoadProfileStore loads profile store from file.
func LoadProfileStore(filepath string) (ProfileStore, error) {
	buf, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrProfileStoreNotFound, filepath)
		}
		return nil, err
	}
	return Unmarshall(buf)
}

// Unmarshall profile store from yaml in byte array.
func Unmarshall(buf []byte) (ProfileStore, error) {
	ret := ProfileStore{}
	if err := yaml.Unmarshal(buf, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Save profile store to file.
//
// The previous content is kept at "<path>.backup" while writing,
// and it is restored if writing fails.
func (ps ProfileStore) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}

	buf, err := yaml.Marshal(ps)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR, os.FileMode(0600))
	switch {
	case err == nil:
		// the existing file may have loose permissions.
		if err := acl.Chmod(path, os.FileMode(0600)); err != nil {
			f.Close()
			return err
		}
	case os.IsPermission(err):
		return fmt.Errorf(
			"%w, because no permission to write file at %s",
			ErrCannotUpdateConfig, path,
		)
	case os.IsNotExist(err):
		f_, err_ := open.NewSafeFile(path)
		if err_ != nil {
			return fmt.Errorf(
				"%w: cannot create a file at %s", ErrCannotCreateConfig, path,
			)
		}
		f = f_
	default:
		return err
	}
	defer f.Close()

	bkpath := path + ".backup"
	bk, err := open.NewSafeFile(bkpath)
	if err != nil {
		return err
	}
	defer bk.Close()
	if _, err := io.Copy(bk, f); err != nil {
		os.Remove(bkpath)
		return err
	}

	if err := overwrite(f, buf); err != nil {
		if _, err := bk.Seek(0, 0); err == nil {
			if overwrite(f, nil) == nil {
				io.Copy(f, bk)
			}
		}
		return err
	}

	bk.Close()
	os.Remove(bkpath)
	return nil
}

func overwrite(f *os.File, content []byte) error {
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if err := f.Truncate(0); err != nil {
		return err
	}
	_, err := f.Write(content)
	return err
}
