package fake

type Participant struct {
	sid      string
	identity string
}

func NewParticipant(sid, identity string) *Participant {
	return &Participant{sid: sid, identity: identity}
}

func (p *Participant) SID() string      { return p.sid }
func (p *Participant) Identity() string { return p.identity }

type Message struct {
	sid    string
	index  uint
	author string
	body   string
}

func NewMessage(sid string, index uint, author, body string) *Message {
	return &Message{sid: sid, index: index, author: author, body: body}
}

func (m *Message) SID() string    { return m.sid }
func (m *Message) Index() uint    { return m.index }
func (m *Message) Author() string { return m.author }
func (m *Message) Body() string   { return m.body }

type User struct {
	identity     string
	friendlyName string
}

func NewUser(identity, friendlyName string) *User {
	return &User{identity: identity, friendlyName: friendlyName}
}

func (u *User) Identity() string     { return u.identity }
func (u *User) FriendlyName() string { return u.friendlyName }

type Media struct {
	sid         string
	contentType string
	filename    string
	size        int64
}

func NewMedia(sid, contentType, filename string, size int64) *Media {
	return &Media{sid: sid, contentType: contentType, filename: filename, size: size}
}

func (m *Media) SID() string         { return m.sid }
func (m *Media) ContentType() string { return m.contentType }
func (m *Media) Filename() string    { return m.filename }
func (m *Media) Size() int64         { return m.size }
