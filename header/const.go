// Package header parses the fixed 80-byte header blocks at the front of an
// XPT v5 transport stream: the library header, the member header, and the
// namestr table that describes each variable in the dataset.
package header

// RecordSize is the fixed width, in bytes, of every header and observation
// record in an XPT stream.
const RecordSize = 80

const (
	libraryPrefix  = "HEADER RECORD*******LIBRARY HEADER RECORD!!!!!!!"
	memberPrefix   = "HEADER RECORD*******MEMBER  HEADER RECORD!!!!!!!"
	dscrptrPrefix  = "HEADER RECORD*******DSCRPTR HEADER RECORD!!!!!!!"
	namestrPrefix  = "HEADER RECORD*******NAMESTR HEADER RECORD!!!!!!!"
	obsPrefix      = "HEADER RECORD*******OBS     HEADER RECORD!!!!!!!"
	sasTag         = "SAS     "
	saslibTag      = "SASLIB  "
	sasdataLiteral = "SASDATA "
)

// NamestrRecordSize136 and NamestrRecordSize140 are the two namestr record
// widths a member header may declare.
const (
	NamestrRecordSize136 = 136
	NamestrRecordSize140 = 140
)
