package sanity

// GROQ queries for every named document the site renders. Image and video
// fields are projected to plain asset URLs so the partial shapes stay flat.

const homeSettingsQuery = `*[_type == "homeSettings"][0]{
  titleLine1,
  titleLine2,
  subtitle,
  primaryCtaLabel,
  primaryCtaHref,
  secondaryCtaLabel,
  secondaryCtaHref,
  "videoUrl": heroVideo.asset->url
}`

const aboutSettingsQuery = `*[_type == "aboutSettings"][0]{
  headline,
  lead,
  body,
  ctaLabel,
  ctaHref,
  imageUrl
}`

const servicesSettingsQuery = `*[_type == "servicesSettings"][0]{
  heading,
  heroTitle,
  heroSubtitle,
  "heroImageUrl": heroImage.asset->url,
  "heroVideoUrl": heroVideo.asset->url,
  services[]{
    title,
    "imageUrl": image.asset->url,
    ctaLabel,
    ctaHref
  }
}`

const referencesSettingsQuery = `*[_type == "referencesSettings"][0]{
  heading,
  subheading,
  items[]{
    "imageUrl": image.asset->url,
    caption,
    tag,
    location
  }
}`

const referencesPageSettingsQuery = `*[_type == "referencesPageSettings"][0]{
  heroTitle,
  heroSubtitle,
  "heroImageUrl": heroImage.asset->url,
  "heroVideoUrl": heroVideo.asset->url
}`

const allReferencesQuery = `*[_type == "projectReference"] | order(year desc){
  _id,
  title,
  "slug": slug.current,
  tag,
  location,
  year,
  sizeM2,
  excerpt,
  "imageUrl": image.asset->url
}`

const referenceBySlugQuery = `*[_type == "projectReference" && slug.current == $slug][0]{
  _id,
  title,
  "slug": slug.current,
  tag,
  location,
  year,
  sizeM2,
  excerpt,
  "imageUrl": image.asset->url
}`

const servicePageBySlugQuery = `*[_type == "servicePage" && slug.current == $slug][0]{
  title,
  "slug": slug.current,
  heroSubtitle,
  "heroImageUrl": heroImage.asset->url,
  contentTitle,
  "contentBody": pt::text(contentBody),
  "sideImageUrl": sideImage.asset->url,
  specsTitle,
  "specsBody": pt::text(specsBody),
  coverageTitle,
  coverageBody,
  references[]{
    "imageUrl": image.asset->url,
    caption,
    tag
  },
  seoTitle,
  seoDescription
}`

const contactSettingsQuery = `*[_type == "contactSettings"][0]{
  heroMediaType,
  "heroImageUrl": heroImage.asset->url,
  "heroVideoUrl": heroVideo.asset->url,
  heroTitle,
  heroSubtitle,
  introTitle,
  introBody,
  company,
  billing,
  formTitle,
  formIntro
}`
