package xmp

import "github.com/google/uuid"

// XMP Media Management schema.

// NewID returns a fresh GUID in the uuid: scheme, suitable for the xmpMM
// identifier properties.
func NewID() string {
	return "uuid:" + uuid.NewString()
}

// DerivedFrom starts the xmpMM:DerivedFrom property: the document this
// document is derived from. The returned writer must be closed.
func (w *Writer) DerivedFrom() *ResourceRefWriter {
	return &ResourceRefWriter{w.Element("DerivedFrom", XMPMedia).Object()}
}

// DocumentID writes the xmpMM:DocumentID property: a common identifier for
// the document and all of its versions and renditions.
func (w *Writer) DocumentID(id string) *Writer {
	w.Element("DocumentID", XMPMedia).String(id)
	return w
}

// History starts the xmpMM:History property: a list of actions taken on the
// document. The returned writer must be closed.
func (w *Writer) History() *ResourceEventsWriter {
	return &ResourceEventsWriter{w.Element("History", XMPMedia).Array(Seq)}
}

// Ingredients starts the xmpMM:Ingredients property: resources that were
// used to create the document. The returned writer must be closed.
func (w *Writer) Ingredients() *ResourceRefsWriter {
	return &ResourceRefsWriter{w.Element("Ingredients", XMPMedia).Array(Bag)}
}

// InstanceID writes the xmpMM:InstanceID property: a unique identifier for
// this rendition, updated each time the document is saved.
func (w *Writer) InstanceID(id string) *Writer {
	w.Element("InstanceID", XMPMedia).String(id)
	return w
}

// ManagedFrom starts the xmpMM:ManagedFrom property: a reference to the
// document before it was managed. The returned writer must be closed.
func (w *Writer) ManagedFrom() *ResourceRefWriter {
	return &ResourceRefWriter{w.Element("ManagedFrom", XMPMedia).Object()}
}

// Manager writes the xmpMM:Manager property: the application that manages
// the document.
func (w *Writer) Manager(manager string) *Writer {
	w.Element("Manager", XMPMedia).String(manager)
	return w
}

// ManageTo writes the xmpMM:ManageTo property: the URI of the document in
// the management system.
func (w *Writer) ManageTo(uri string) *Writer {
	w.Element("ManageTo", XMPMedia).String(uri)
	return w
}

// ManageUI writes the xmpMM:ManageUI property: a web page for managing the
// document.
func (w *Writer) ManageUI(uri string) *Writer {
	w.Element("ManageUI", XMPMedia).String(uri)
	return w
}

// ManagerVariant writes the xmpMM:ManagerVariant property.
func (w *Writer) ManagerVariant(variant string) *Writer {
	w.Element("ManagerVariant", XMPMedia).String(variant)
	return w
}

// OriginalDocumentID writes the xmpMM:OriginalDocumentID property: the ID
// of the resource this document was derived from.
func (w *Writer) OriginalDocumentID(id string) *Writer {
	w.Element("OriginalDocumentID", XMPMedia).String(id)
	return w
}

// Pantry starts the xmpMM:Pantry property: an unordered array of structs
// with custom properties, each of which must have an xmpMM:InstanceID. The
// returned writer must be closed.
func (w *Writer) Pantry() *PantryWriter {
	return &PantryWriter{w.Element("Pantry", XMPMedia).Array(Bag)}
}

// RenditionClass writes the xmpMM:RenditionClass property. Shall be absent
// or RenditionDefault if this is not a derived document.
func (w *Writer) RenditionClass(class RenditionClass) *Writer {
	w.Element("RenditionClass", XMPMedia).Value(class)
	return w
}

// RenditionParams writes the xmpMM:RenditionParams property: the parameters
// used to create the rendition.
func (w *Writer) RenditionParams(params string) *Writer {
	w.Element("RenditionParams", XMPMedia).String(params)
	return w
}

// VersionID writes the xmpMM:VersionID property.
func (w *Writer) VersionID(id string) *Writer {
	w.Element("VersionID", XMPMedia).String(id)
	return w
}

// Versions starts the xmpMM:Versions property: the versions of the
// document, oldest first. The returned writer must be closed.
func (w *Writer) Versions() *VersionsWriter {
	return &VersionsWriter{w.Element("Versions", XMPMedia).Array(Seq)}
}

// Jobs starts the xmpBJ:JobRef property: references to jobs in a system
// that involves this resource. The returned writer must be closed.
func (w *Writer) Jobs() *JobsWriter {
	return &JobsWriter{w.Element("JobRef", XMPJobManagement).Array(Bag)}
}

// ResourceRefWriter writes a reference to a resource. Created by
// Writer.DerivedFrom, Writer.ManagedFrom, or ResourceRefsWriter.AddRef.
type ResourceRefWriter struct {
	*Struct
}

// AlternatePaths writes the stRef:alternatePaths property: fallback paths
// to the resource.
func (r *ResourceRefWriter) AlternatePaths(paths ...string) *ResourceRefWriter {
	array := r.Element("alternatePaths", XMPResourceRef).Array(Seq)
	defer array.Close()
	for _, path := range paths {
		array.Element().String(path)
	}
	return r
}

// DocumentID writes the stRef:documentID property of the referenced
// resource.
func (r *ResourceRefWriter) DocumentID(id string) *ResourceRefWriter {
	r.Element("documentID", XMPResourceRef).String(id)
	return r
}

// FilePath writes the stRef:filePath property: the path or URL to the
// resource.
func (r *ResourceRefWriter) FilePath(path string) *ResourceRefWriter {
	r.Element("filePath", XMPResourceRef).String(path)
	return r
}

// InstanceID writes the stRef:instanceID property of the referenced
// resource.
func (r *ResourceRefWriter) InstanceID(id string) *ResourceRefWriter {
	r.Element("instanceID", XMPResourceRef).String(id)
	return r
}

// LastModifyDate writes the stRef:lastModifyDate property.
func (r *ResourceRefWriter) LastModifyDate(date Date) *ResourceRefWriter {
	r.Element("lastModifyDate", XMPResourceRef).Date(date)
	return r
}

// Manager writes the stRef:manager property.
func (r *ResourceRefWriter) Manager(manager string) *ResourceRefWriter {
	r.Element("manager", XMPResourceRef).String(manager)
	return r
}

// ManagerVariant writes the stRef:managerVariant property.
func (r *ResourceRefWriter) ManagerVariant(variant string) *ResourceRefWriter {
	r.Element("managerVariant", XMPResourceRef).String(variant)
	return r
}

// ManageTo writes the stRef:manageTo property.
func (r *ResourceRefWriter) ManageTo(uri string) *ResourceRefWriter {
	r.Element("manageTo", XMPResourceRef).String(uri)
	return r
}

// ManageUI writes the stRef:manageUI property.
func (r *ResourceRefWriter) ManageUI(uri string) *ResourceRefWriter {
	r.Element("manageUI", XMPResourceRef).String(uri)
	return r
}

// MaskMarkers writes the stRef:maskMarkers property: whether to process
// markers for resources in the Ingredients array.
func (r *ResourceRefWriter) MaskMarkers(markers MaskMarkers) *ResourceRefWriter {
	r.Element("maskMarkers", XMPResourceRef).Value(markers)
	return r
}

// PartMapping writes the stRef:partMapping property: the name or URI of a
// mapping function from fromPart to toPart.
func (r *ResourceRefWriter) PartMapping(mapping string) *ResourceRefWriter {
	r.Element("partMapping", XMPResourceRef).String(mapping)
	return r
}

// RenditionClass writes the stRef:renditionClass property of the referenced
// resource.
func (r *ResourceRefWriter) RenditionClass(rendition RenditionClass) *ResourceRefWriter {
	r.Element("renditionClass", XMPResourceRef).Value(rendition)
	return r
}

// RenditionParams writes the stRef:renditionParams property of the
// referenced resource.
func (r *ResourceRefWriter) RenditionParams(params string) *ResourceRefWriter {
	r.Element("renditionParams", XMPResourceRef).String(params)
	return r
}

// ToPart writes the stRef:toPart property: for an ingredient, the part of
// the root resource it corresponds to.
func (r *ResourceRefWriter) ToPart(part string) *ResourceRefWriter {
	r.Element("toPart", XMPResourceRef).String(part)
	return r
}

// VersionID writes the stRef:versionID property of the referenced resource.
func (r *ResourceRefWriter) VersionID(id string) *ResourceRefWriter {
	r.Element("versionID", XMPResourceRef).String(id)
	return r
}

// ResourceRefsWriter writes a resource reference array. Created by
// Writer.Ingredients.
type ResourceRefsWriter struct {
	*Array
}

// AddRef adds a reference to the array.
func (r *ResourceRefsWriter) AddRef() *ResourceRefWriter {
	return &ResourceRefWriter{r.Element().Object()}
}

// ResourceEventWriter writes an event that occurred to a resource. Created
// by VersionWriter.Event and ResourceEventsWriter.AddEvent.
type ResourceEventWriter struct {
	*Struct
}

// Action writes the stEvt:action property.
func (r *ResourceEventWriter) Action(action ResourceEventAction) *ResourceEventWriter {
	r.Element("action", XMPResourceEvent).Value(action)
	return r
}

// Changed writes the stEvt:changed property: a semicolon-separated list of
// the parts of the resource that changed.
func (r *ResourceEventWriter) Changed(parts string) *ResourceEventWriter {
	r.Element("changed", XMPResourceEvent).String(parts)
	return r
}

// InstanceID writes the stEvt:instanceID property: the xmpMM:InstanceID at
// the time of the action.
func (r *ResourceEventWriter) InstanceID(id string) *ResourceEventWriter {
	r.Element("instanceID", XMPResourceEvent).String(id)
	return r
}

// Parameters writes the stEvt:parameters property: additional parameters
// for the action.
func (r *ResourceEventWriter) Parameters(params string) *ResourceEventWriter {
	r.Element("parameters", XMPResourceEvent).String(params)
	return r
}

// SoftwareAgent writes the stEvt:softwareAgent property.
func (r *ResourceEventWriter) SoftwareAgent(agent string) *ResourceEventWriter {
	r.Element("softwareAgent", XMPResourceEvent).String(agent)
	return r
}

// When writes the stEvt:when property: when the action occurred.
func (r *ResourceEventWriter) When(date Date) *ResourceEventWriter {
	r.Element("when", XMPResourceEvent).Date(date)
	return r
}

// ResourceEventsWriter writes a resource event array. Created by
// Writer.History.
type ResourceEventsWriter struct {
	*Array
}

// AddEvent adds an event to the array.
func (r *ResourceEventsWriter) AddEvent() *ResourceEventWriter {
	return &ResourceEventWriter{r.Element().Object()}
}

// PantryWriter writes the pantry array. Created by Writer.Pantry.
type PantryWriter struct {
	*Array
}

// AddItem adds an item to the pantry.
func (p *PantryWriter) AddItem() *PantryItemWriter {
	return &PantryItemWriter{p.Element().Object()}
}

// PantryItemWriter writes an item in the pantry array. Use the embedded
// Struct to add custom properties. Created by PantryWriter.AddItem.
type PantryItemWriter struct {
	*Struct
}

// InstanceID writes the xmpMM:InstanceID property. Required.
func (p *PantryItemWriter) InstanceID(id string) *PantryItemWriter {
	p.Element("InstanceID", XMPMedia).String(id)
	return p
}

// VersionWriter writes a version struct. Created by
// VersionsWriter.AddVersion.
type VersionWriter struct {
	*Struct
}

// Comments writes the stVer:comments property.
func (v *VersionWriter) Comments(comments string) *VersionWriter {
	v.Element("comments", XMPVersion).String(comments)
	return v
}

// Event starts the stVer:event property: the event that created the
// version. The returned writer must be closed.
func (v *VersionWriter) Event() *ResourceEventWriter {
	return &ResourceEventWriter{v.Element("event", XMPVersion).Object()}
}

// Modifier writes the stVer:modifier property: who created the version.
func (v *VersionWriter) Modifier(modifier string) *VersionWriter {
	v.Element("modifier", XMPVersion).String(modifier)
	return v
}

// ModifyDate writes the stVer:modifyDate property.
func (v *VersionWriter) ModifyDate(date Date) *VersionWriter {
	v.Element("modifyDate", XMPVersion).Date(date)
	return v
}

// Version writes the stVer:version property: the new version number.
func (v *VersionWriter) Version(version string) *VersionWriter {
	v.Element("version", XMPVersion).String(version)
	return v
}

// VersionsWriter writes a versions array. Created by Writer.Versions.
type VersionsWriter struct {
	*Array
}

// AddVersion adds a version to the array.
func (v *VersionsWriter) AddVersion() *VersionWriter {
	return &VersionWriter{v.Element().Object()}
}

// JobWriter writes a job struct. Created by JobsWriter.AddJob.
type JobWriter struct {
	*Struct
}

// ID writes the stJob:id property: the unique identifier for the job.
func (j *JobWriter) ID(id string) *JobWriter {
	j.Element("id", XMPJob).String(id)
	return j
}

// Name writes the stJob:name property.
func (j *JobWriter) Name(name string) *JobWriter {
	j.Element("name", XMPJob).String(name)
	return j
}

// URL writes the stJob:url property: an external job management file.
func (j *JobWriter) URL(url string) *JobWriter {
	j.Element("url", XMPJob).String(url)
	return j
}

// JobsWriter writes a job array. Created by Writer.Jobs.
type JobsWriter struct {
	*Array
}

// AddJob adds a job to the array.
func (j *JobsWriter) AddJob() *JobWriter {
	return &JobWriter{j.Element().Object()}
}
