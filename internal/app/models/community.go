package models

// AnonymousPost is a community post published under an anonymous alias
type AnonymousPost struct {
	ID       int      `json:"id" yaml:"id"`
	Alias    string   `json:"alias" yaml:"alias"`
	Text     string   `json:"text" yaml:"text"`
	Hashtags []string `json:"hashtags" yaml:"hashtags"`
	Reported bool     `json:"reported" yaml:"reported"`
}

// TrendTag is a trending hashtag with its aggregate sentiment in [-1, 1]
type TrendTag struct {
	Tag       string  `json:"tag" yaml:"tag"`
	Sentiment float64 `json:"sentiment" yaml:"sentiment"`
}

func (p AnonymousPost) clone() AnonymousPost {
	c := p
	if p.Hashtags != nil {
		c.Hashtags = append([]string(nil), p.Hashtags...)
	}
	return c
}
